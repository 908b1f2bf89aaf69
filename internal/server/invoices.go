package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/invoicepipe/invoice-extractor/constants"
	invoicespb "github.com/invoicepipe/invoice-extractor/gen/proto/invoices/v1"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/export"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/invoices"
	"github.com/invoicepipe/invoice-extractor/internal/rasterize"
	"github.com/invoicepipe/invoice-extractor/internal/repository"
	"github.com/invoicepipe/invoice-extractor/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	svc         *invoices.Service
	vendorRepo  repository.VendorRepository
	invoiceRepo repository.InvoiceRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewInvoicesService(svc *invoices.Service, vendorRepo repository.VendorRepository, invoiceRepo repository.InvoiceRepository, exporter *export.Service, logger *slog.Logger) *InvoicesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesService{
		svc:         svc,
		vendorRepo:  vendorRepo,
		invoiceRepo: invoiceRepo,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *InvoicesService) UploadInvoice(ctx context.Context, req *invoicespb.UploadInvoiceRequest) (*invoicespb.UploadInvoiceResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	mediaType := resolveMediaType(req.GetMediaType(), req.GetFileName())
	if mediaType == "" {
		return nil, common.InvalidArgumentErrorf("unsupported media type %q", req.GetMediaType())
	}

	reqID := uuid.NewString()
	ctx = common.WithRequestID(ctx, reqID)
	logger := s.logger.With("req_id", reqID)
	logger.Info("upload received", "file_name", req.GetFileName(), "media_type", mediaType, "bytes", len(req.GetContent()))

	res, err := s.svc.ProcessDocument(ctx, req.GetContent(), req.GetFileName(), mediaType)
	if err != nil {
		logger.Error("upload processing failed", "error", err)
		switch {
		case errors.Is(err, rasterize.ErrUnsupportedType):
			return nil, common.InvalidArgumentError("unsupported document type")
		case errors.Is(err, rasterize.ErrDecode), errors.Is(err, rasterize.ErrConversion):
			return nil, common.InvalidArgumentError("document could not be decoded")
		case errors.Is(err, extract.ErrNoTextExtracted):
			return nil, status.Error(codes.FailedPrecondition, "no text could be extracted from the document")
		case errors.Is(err, common.ErrInvalidInput):
			return nil, common.InvalidArgumentError(err.Error())
		case errors.Is(err, common.ErrDuplicate):
			return nil, status.Error(codes.AlreadyExists, "invoice already exists")
		default:
			return nil, common.InternalError("failed to process document")
		}
	}

	return &invoicespb.UploadInvoiceResponse{
		Invoice:   utils.ToPBInvoice(res.Invoice),
		Duplicate: res.Duplicate,
		JobId:     res.JobID.String(),
	}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	filter, err := listFilterFromRequest(req)
	if err != nil {
		return nil, err
	}

	invs, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.logger.Error("list invoices failed", "error", err)
		return nil, common.InternalError("failed to list invoices")
	}

	out := make([]*invoicespb.Invoice, len(invs))
	for i, inv := range invs {
		out[i] = utils.ToPBInvoice(inv)
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesService) ListVendors(ctx context.Context, _ *invoicespb.ListVendorsRequest) (*invoicespb.ListVendorsResponse, error) {
	vendors, err := s.vendorRepo.List(ctx)
	if err != nil {
		s.logger.Error("list vendors failed", "error", err)
		return nil, common.InternalError("failed to list vendors")
	}
	out := make([]*invoicespb.Vendor, len(vendors))
	for i, v := range vendors {
		out[i] = utils.ToPBVendor(v)
	}
	return &invoicespb.ListVendorsResponse{Vendors: out}, nil
}

func (s *InvoicesService) UpdateInvoiceStatus(ctx context.Context, req *invoicespb.UpdateInvoiceStatusRequest) (*invoicespb.UpdateInvoiceStatusResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetInvoiceId()))
	if err != nil {
		return nil, common.InvalidArgumentError("invoice_id must be a UUID")
	}

	inv, err := s.invoiceRepo.UpdateStatus(ctx, id, req.GetStatus())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			return nil, common.InvalidArgumentErrorf("status must be one of %v", constants.InvoiceStatuses())
		case errors.Is(err, common.ErrNotFound):
			return nil, common.NotFoundError("invoice not found")
		default:
			s.logger.Error("status update failed", "invoice_id", id, "error", err)
			return nil, common.InternalError("failed to update invoice status")
		}
	}
	return &invoicespb.UpdateInvoiceStatusResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesService) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	filter := repository.ListInvoicesFilter{}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !constants.IsInvoiceStatus(st) {
			return nil, common.InvalidArgumentErrorf("status must be one of %v", constants.InvoiceStatuses())
		}
		filter.Status = st
	}

	data, rows, err := s.exporter.ExportInvoicesXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("failed to export invoices")
	}

	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			s.logger.Error("export.write.failed", "path", outPath, "err", err)
			return nil, common.InternalErrorf("failed to write export file: %v", err)
		}
	}

	return &invoicespb.ExportInvoicesResponse{
		FilePath: outPath,
		RowCount: uint32(rows),
		Xlsx:     data,
	}, nil
}

// resolveMediaType accepts either a declared media type or content type, and
// falls back to the file extension.
func resolveMediaType(declared, fileName string) constants.MediaType {
	if mt := constants.ParseMediaType(declared); mt != "" {
		return mt
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	return constants.MapExtToMediaType(ext)
}

func listFilterFromRequest(req *invoicespb.ListInvoicesRequest) (repository.ListInvoicesFilter, error) {
	filter := repository.ListInvoicesFilter{}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !constants.IsInvoiceStatus(st) {
			return filter, common.InvalidArgumentErrorf("status must be one of %v", constants.InvoiceStatuses())
		}
		filter.Status = st
	}
	if vid := strings.TrimSpace(req.GetVendorId()); vid != "" {
		id, err := uuid.Parse(vid)
		if err != nil {
			return filter, common.InvalidArgumentError("vendor_id must be a UUID")
		}
		filter.VendorID = &id
	}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return filter, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return filter, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.ToDate = &to
	}
	return filter, nil
}
