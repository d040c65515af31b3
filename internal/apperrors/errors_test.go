package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestUploadErrorsWrapCategories(t *testing.T) {
	tests := []struct {
		err      error
		category error
	}{
		{apperrors.ErrNoFileUploaded, apperrors.ErrInvalidInput},
		{apperrors.ErrInvalidFileType, apperrors.ErrInvalidInput},
		{apperrors.ErrInvalidCSVHeader, apperrors.ErrInvalidFormat},
		{apperrors.ErrInvalidFileData, apperrors.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("%w: details", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.category)
		})
	}

	assert.False(t, errors.Is(apperrors.ErrInvalidFileType, apperrors.ErrNoFileUploaded))
}
