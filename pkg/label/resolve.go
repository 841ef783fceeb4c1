package label

import "github.com/Ramsey-B/laurel/pkg/models"

// Field resolution: batch override wins whenever the batch defines the
// field, otherwise the product's own value applies. Composite field groups
// (materials, certifications, recyclability) are replaced all-or-nothing;
// a batch override fully supersedes the product list for that assembly and
// is never merged item by item. Resolution has no error cases: absent
// values resolve to nil or empty and downstream code must handle them.

// ResolveBatchNumber returns the batch number when a batch is selected.
func ResolveBatchNumber(batch *models.Batch) string {
	if batch == nil {
		return ""
	}
	return batch.BatchNumber
}

// ResolveSerialNumber returns the serial number when a batch is selected.
func ResolveSerialNumber(batch *models.Batch) string {
	if batch == nil {
		return ""
	}
	return batch.SerialNumber
}

// ResolveQuantity returns the batch quantity. Nil means unknown; it is
// never defaulted to zero or one.
func ResolveQuantity(batch *models.Batch) *int64 {
	if batch == nil {
		return nil
	}
	return batch.Quantity
}

// ResolveGrossWeight returns the batch gross weight when set, otherwise the
// product's gross weight.
func ResolveGrossWeight(product *models.Product, batch *models.Batch) *int64 {
	if batch != nil && batch.GrossWeightGrams != nil {
		return batch.GrossWeightGrams
	}
	if product == nil {
		return nil
	}
	return product.GrossWeightGrams
}

// ResolveMaterials returns the batch materials override when defined,
// otherwise the product materials.
func ResolveMaterials(product *models.Product, batch *models.Batch) []models.Material {
	if batch != nil && batch.MaterialsOverride != nil {
		return batch.MaterialsOverride
	}
	if product == nil {
		return nil
	}
	return product.Materials
}

// ResolveCertifications returns the batch certifications override when
// defined, otherwise the product certifications.
func ResolveCertifications(product *models.Product, batch *models.Batch) []string {
	if batch != nil && batch.CertificationsOverride != nil {
		return batch.CertificationsOverride
	}
	if product == nil {
		return nil
	}
	return product.Certifications
}

// ResolveRecyclability returns the batch recyclability override when set,
// otherwise the product recyclability.
func ResolveRecyclability(product *models.Product, batch *models.Batch) *models.Recyclability {
	if batch != nil && batch.RecyclabilityOverride != nil {
		return batch.RecyclabilityOverride
	}
	if product == nil {
		return nil
	}
	return product.Recyclability
}
