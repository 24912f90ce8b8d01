package impl

import (
	"strings"
	"unicode/utf8"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"
)

const (
	maxTitleLength   = 200
	maxCommentLength = 1000
)

// normalizePostInput trims title and content and checks they are non-empty.
func normalizePostInput(input usecase.PostInput) (title, content string, err error) {
	title = strings.TrimSpace(input.Title)
	content = strings.TrimSpace(input.Content)

	if title == "" {
		return "", "", domainerrors.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", "", domainerrors.ErrTitleTooLong
	}
	if content == "" {
		return "", "", domainerrors.ErrEmptyContent
	}

	return title, content, nil
}

// normalizeCommentContent trims content and checks its length.
func normalizeCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return "", domainerrors.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return "", domainerrors.ErrCommentTooLong
	}

	return content, nil
}

func requirePrincipal(principal *entity.User) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}
