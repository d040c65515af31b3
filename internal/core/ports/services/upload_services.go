package services

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/dto"
)

// UploadReaderSvc validates an uploaded file and extracts its raw rows.
type UploadReaderSvc interface {
	HandleFileUpload(ctx context.Context, data []byte, mimeType string) ([]dto.RawProductRow, error)
}

// UploadImporterSvc runs the full bulk import and reports how many products were stored.
type UploadImporterSvc interface {
	ImportProducts(ctx context.Context, data []byte, mimeType string) (int, error)
}

// UploadSvcFacade combines all upload-related service interfaces
type UploadSvcFacade interface {
	UploadReaderSvc
	UploadImporterSvc
}
