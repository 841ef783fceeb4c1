package label

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/laurel/internal/repositories/batch"
	"github.com/Ramsey-B/laurel/internal/repositories/labelprofile"
	"github.com/Ramsey-B/laurel/internal/repositories/product"
	"github.com/Ramsey-B/laurel/internal/repositories/supplier"
	"github.com/Ramsey-B/laurel/pkg/dpplink"
	labelcore "github.com/Ramsey-B/laurel/pkg/label"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
)

// BuildRequest identifies one label assembly. Supplier override IDs take
// precedence over the product's own references; they are used by the preview
// endpoint to try out a supplier before linking it.
type BuildRequest struct {
	TenantID  string
	ProductID string
	BatchID   string

	Variant       models.LabelVariant
	TargetCountry string

	ManufacturerSupplierID string
	ImporterSupplierID     string

	SkipCache bool
}

// BuildResult pairs the assembled label with its validation findings.
// Findings are advisory; a result with error findings is still a result.
type BuildResult struct {
	Label    *models.MasterLabelData    `json:"label"`
	Findings []models.ValidationFinding `json:"findings"`
}

// Service orchestrates the label pipeline: load records, resolve supplier
// identities, build the passport link, assemble and validate.
type Service struct {
	logger    ectologger.Logger
	products  product.ProductRepository
	batches   batch.BatchRepository
	suppliers supplier.SupplierRepository
	profiles  labelprofile.LabelProfileRepository
	cache     *Cache
}

// NewService creates a new label service. cache may be nil to disable
// caching.
func NewService(
	logger ectologger.Logger,
	products product.ProductRepository,
	batches batch.BatchRepository,
	suppliers supplier.SupplierRepository,
	profiles labelprofile.LabelProfileRepository,
	cache *Cache,
) *Service {
	return &Service{
		logger:    logger,
		products:  products,
		batches:   batches,
		suppliers: suppliers,
		profiles:  profiles,
		cache:     cache,
	}
}

// Cache exposes the label cache for invalidation by the write paths
func (s *Service) Cache() *Cache {
	return s.cache
}

// BuildLabel runs the full pipeline for one request. Data-completeness
// problems surface as findings on the result; only missing records, storage
// failures and bad requests return errors.
func (s *Service) BuildLabel(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	ctx, span := tracing.StartSpan(ctx, "LabelService.BuildLabel")
	defer span.End()

	if req.TenantID == "" {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "tenant_id is required")
	}
	if req.ProductID == "" {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "product_id is required")
	}

	variant := req.Variant
	if variant == "" {
		variant = models.LabelVariantB2B
	}
	if variant != models.LabelVariantB2B && variant != models.LabelVariantB2C {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "variant must be b2b or b2c")
	}

	profile, err := s.loadProfile(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	targetCountry := ""
	if variant == models.LabelVariantB2C {
		targetCountry = req.TargetCountry
		if targetCountry == "" && profile != nil {
			targetCountry = profile.DefaultTargetCountry
		}
	}

	// Supplier overrides change the assembly input without changing the
	// cache identity, so overridden requests bypass the cache entirely.
	cacheable := !req.SkipCache && req.ManufacturerSupplierID == "" && req.ImporterSupplierID == ""
	if cacheable {
		if cached := s.cache.Get(ctx, req.TenantID, req.ProductID, req.BatchID, variant, targetCountry); cached != nil {
			return cached, nil
		}
	}

	prod, err := s.products.GetByID(ctx, req.TenantID, req.ProductID)
	if err != nil {
		return nil, err
	}

	var batchRecord *models.Batch
	if req.BatchID != "" {
		batchRecord, err = s.batches.GetByID(ctx, req.TenantID, req.BatchID)
		if err != nil {
			return nil, err
		}
	}

	manufacturer, err := s.resolveParty(ctx, req.TenantID, prod, req.ManufacturerSupplierID, prod.ManufacturerSupplierID, models.SupplierRoleManufacturer)
	if err != nil {
		return nil, err
	}
	importer, err := s.resolveParty(ctx, req.TenantID, prod, req.ImporterSupplierID, prod.ImporterSupplierID, models.SupplierRoleImporter)
	if err != nil {
		return nil, err
	}

	serial := labelcore.ResolveSerialNumber(batchRecord)
	if serial == "" {
		serial = labelcore.ResolveBatchNumber(batchRecord)
	}
	dppURL := dpplink.BuildDPPURL(prod.GTIN, serial, dpplink.ConfigFromProfile(profile))

	qrDataURL, err := dpplink.GenerateQRDataURL(dppURL)
	if err != nil {
		// Rendering failure degrades: the label ships without a QR image
		// and the validator reports the gap.
		s.logger.WithContext(ctx).WithError(err).Warn("QR rendering failed, assembling without image")
		qrDataURL = ""
	}

	data, err := labelcore.AssembleMasterLabelData(labelcore.AssembleParams{
		Product:       prod,
		Batch:         batchRecord,
		Manufacturer:  manufacturer,
		Importer:      importer,
		Variant:       variant,
		TargetCountry: targetCountry,
		DPPURL:        dppURL,
		QRDataURL:     qrDataURL,
	})
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Label:    data,
		Findings: labelcore.ValidateMasterLabel(data),
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"tenant_id":  req.TenantID,
		"product_id": req.ProductID,
		"batch_id":   req.BatchID,
		"variant":    variant,
		"findings":   len(result.Findings),
	}).Info("Assembled label")

	if cacheable {
		s.cache.Put(ctx, req.TenantID, req.ProductID, req.BatchID, variant, targetCountry, result)
	}

	return result, nil
}

// loadProfile returns the tenant's label profile, or nil when none has been
// configured yet
func (s *Service) loadProfile(ctx context.Context, tenantID string) (*models.LabelProfile, error) {
	profile, err := s.profiles.Get(ctx, tenantID)
	if err != nil {
		if httperror.IsHTTPError(err) && httperror.GetStatusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// resolveParty resolves one supplier identity. Precedence: explicit override
// ID, then the product-level reference, then the first role-tagged linked
// supplier in link order. Identities come from exactly one record; sources
// are never merged. A dangling product-level reference falls through to the
// role scan instead of failing the label.
func (s *Service) resolveParty(ctx context.Context, tenantID string, prod *models.Product, overrideID, productLevelID, role string) (*models.Party, error) {
	if overrideID != "" {
		// An explicit override must exist; a 404 here is the caller's error
		record, err := s.suppliers.GetByID(ctx, tenantID, overrideID)
		if err != nil {
			return nil, err
		}
		return toParty(record), nil
	}

	if productLevelID != "" {
		record, err := s.suppliers.GetByID(ctx, tenantID, productLevelID)
		if err == nil {
			return toParty(record), nil
		}
		if !httperror.IsHTTPError(err) || httperror.GetStatusCode(err) != http.StatusNotFound {
			return nil, err
		}
		s.logger.WithContext(ctx).WithFields(map[string]any{
			"tenant_id":   tenantID,
			"product_id":  prod.ID,
			"supplier_id": productLevelID,
			"role":        role,
		}).Warn("Product references a missing supplier")
	}

	if len(prod.LinkedSupplierIDs) == 0 {
		return nil, nil
	}

	linked, err := s.suppliers.ListByIDs(ctx, tenantID, prod.LinkedSupplierIDs)
	if err != nil {
		return nil, err
	}

	// ListByIDs returns storage order; link order decides the winner
	byID := make(map[string]*models.Supplier, len(linked))
	for _, record := range linked {
		byID[record.ID] = record
	}
	for _, id := range prod.LinkedSupplierIDs {
		if record, ok := byID[id]; ok && record.HasRole(role) {
			return toParty(record), nil
		}
	}

	return nil, nil
}

func toParty(record *models.Supplier) *models.Party {
	return &models.Party{
		Name:    record.Name,
		Address: record.Address,
	}
}
