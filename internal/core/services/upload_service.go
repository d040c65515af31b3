package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"golang.org/x/sync/errgroup"
)

// CSVMimeType is the only accepted upload media type.
const CSVMimeType = "text/csv"

const defaultUploadConcurrency = 8

// ExpectedHeaders are the normalized CSV headers, in order.
var ExpectedHeaders = []string{"name", "price", "expiration"}

type uploadService struct {
	BaseService
	productService portssvc.ProductSvcFacade
	concurrency    int
}

// NewUploadService creates the bulk import service.
// concurrency bounds how many rows are stored at the same time.
func NewUploadService(productService portssvc.ProductSvcFacade, concurrency int) portssvc.UploadSvcFacade {
	if concurrency <= 0 {
		concurrency = defaultUploadConcurrency
	}
	return &uploadService{
		productService: productService,
		concurrency:    concurrency,
	}
}

var _ portssvc.UploadSvcFacade = (*uploadService)(nil)

// HandleFileUpload checks the upload and returns its data rows keyed by the normalized headers.
func (s *uploadService) HandleFileUpload(ctx context.Context, data []byte, mimeType string) ([]dto.RawProductRow, error) {
	if data == nil {
		return nil, apperrors.ErrNoFileUploaded
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType != CSVMimeType {
		return nil, fmt.Errorf("%w %q", apperrors.ErrInvalidFileType, mimeType)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidFileData, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = normalizeHeader(h)
	}
	if !slices.Equal(headers, ExpectedHeaders) {
		return nil, fmt.Errorf("%w %v", apperrors.ErrInvalidCSVHeader, headers)
	}

	rows := make([]dto.RawProductRow, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidFileData, err)
		}
		if isBlankRecord(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, dto.RawProductRow{
			Line:       line,
			Name:       cell(record, 0),
			Price:      cell(record, 1),
			Expiration: cell(record, 2),
		})
	}

	s.LogDebug(ctx, "CSV parsed", slog.Int("rows", len(rows)))
	return rows, nil
}

// ImportProducts parses, normalizes and stores every row of the upload.
// Rows are stored concurrently; a failing row never stops the others.
func (s *uploadService) ImportProducts(ctx context.Context, data []byte, mimeType string) (int, error) {
	rows, err := s.HandleFileUpload(ctx, data, mimeType)
	if err != nil {
		return 0, err
	}
	requests := s.productService.ParseProducts(ctx, rows)

	// Stores run to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	var stored atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, req := range requests {
		g.Go(func() error {
			if product := s.productService.CreateProduct(gctx, req); product != nil {
				stored.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(stored.Load()), fmt.Errorf("failed to import products: %w", err)
	}

	total := int(stored.Load())
	s.LogInfo(ctx, "Products imported",
		slog.Int("rows", len(rows)),
		slog.Int("valid", len(requests)),
		slog.Int("stored", total))
	return total, nil
}

// utf8BOM prefixes files saved by spreadsheet tools.
const utf8BOM = "\ufeff"

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.Replace(strings.ToLower(h), ";", "", 1))
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
