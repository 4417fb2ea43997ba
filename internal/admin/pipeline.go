// Package admin implements the mutation pipeline behind the admin surface:
// draft validation, create/update/delete against the product store, and the
// Create/Edit form mode machine.
package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calloway/showroom/internal/catalog"
	"github.com/calloway/showroom/internal/store"
)

// ErrNotFound indicates the product targeted by an edit no longer exists,
// e.g. it was deleted from another surface before the save landed.
var ErrNotFound = errors.New("product not found")

// Field identifies a draft field, so the UI can focus the offending input
// when validation fails.
type Field int

const (
	FieldTitle Field = iota
	FieldPrice
	FieldCategory
	FieldImage
)

// ValidationError reports a draft field that failed validation.
type ValidationError struct {
	Field Field
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Draft holds user-entered, not-yet-committed product field values.
type Draft struct {
	Title    string
	Price    string
	Category string
	Image    string
}

// Mode is the pipeline's form state.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Pipeline applies validated mutations to the store as one unit: mutate the
// in-memory list, save the whole list, reset the form mode. It is driven
// from a single surface's event loop and is not safe for concurrent use.
type Pipeline struct {
	store *store.Store
	now   func() time.Time

	mode      Mode
	editingID int64
}

// New creates a pipeline in Create mode. now may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func New(s *store.Store, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{store: s, now: now}
}

// Mode returns the current form mode.
func (p *Pipeline) Mode() Mode {
	return p.mode
}

// EditingID returns the id under edit, or 0 in Create mode.
func (p *Pipeline) EditingID() int64 {
	if p.mode != ModeEdit {
		return 0
	}
	return p.editingID
}

// StartEdit transitions to Edit mode for the given product.
func (p *Pipeline) StartEdit(id int64) {
	p.mode = ModeEdit
	p.editingID = id
}

// Cancel abandons a pending edit and returns to Create mode.
func (p *Pipeline) Cancel() {
	p.mode = ModeCreate
	p.editingID = 0
}

// ValidateDraft checks a draft before any mutation. Title and price must be
// non-empty after trimming, an image payload must be present, and the
// category must be a member of the enumeration. The original storefront
// trusted its closed selection control and skipped the category check; the
// pipeline verifies it anyway so a bad caller cannot persist a category the
// filter can never match.
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: FieldTitle, Msg: "Please enter product title"}
	}
	if strings.TrimSpace(d.Price) == "" {
		return &ValidationError{Field: FieldPrice, Msg: "Please enter product price"}
	}
	if d.Image == "" {
		return &ValidationError{Field: FieldImage, Msg: "Please upload a product image"}
	}
	if !catalog.ValidCategory(d.Category) {
		return &ValidationError{Field: FieldCategory, Msg: fmt.Sprintf("Unknown category %q", d.Category)}
	}
	return nil
}

// Create validates the draft, assigns a fresh id and creation date from the
// clock, prepends the product, and saves. The new product returns to the
// caller; the pipeline resets to Create mode.
func (p *Pipeline) Create(d Draft) (catalog.Product, error) {
	if err := ValidateDraft(d); err != nil {
		return catalog.Product{}, err
	}

	products := p.store.Products()
	now := p.now().UnixMilli()

	// ids come from the creation timestamp; bump past collisions so the
	// uniqueness invariant survives two creates in the same millisecond.
	id := now
	for catalog.FindByID(products, id) >= 0 {
		id++
	}

	product := catalog.Product{
		ID:       id,
		Title:    strings.TrimSpace(d.Title),
		Price:    strings.TrimSpace(d.Price),
		Category: d.Category,
		Image:    d.Image,
		Date:     now,
	}

	products = append([]catalog.Product{product}, products...)
	if err := p.store.Save(products); err != nil {
		return catalog.Product{}, fmt.Errorf("save products: %w", err)
	}

	p.Cancel()
	return product, nil
}

// Update validates the draft and replaces the editable fields of the
// product with the given id, preserving its id and creation date. Returns
// ErrNotFound when the target has vanished; the caller should fall back to
// Create mode, which the pipeline has already done.
func (p *Pipeline) Update(id int64, d Draft) (catalog.Product, error) {
	if err := ValidateDraft(d); err != nil {
		return catalog.Product{}, err
	}

	products := p.store.Products()
	idx := catalog.FindByID(products, id)
	if idx < 0 {
		p.Cancel()
		return catalog.Product{}, ErrNotFound
	}

	products[idx].Title = strings.TrimSpace(d.Title)
	products[idx].Price = strings.TrimSpace(d.Price)
	products[idx].Category = d.Category
	products[idx].Image = d.Image

	if err := p.store.Save(products); err != nil {
		return catalog.Product{}, fmt.Errorf("save products: %w", err)
	}

	updated := products[idx]
	p.Cancel()
	return updated, nil
}

// Delete removes the product with the given id, reporting whether anything
// was removed. Deleting an unknown id is a no-op: nothing is saved and no
// notification goes out, which is observably identical to saving the
// unchanged list. Deleting the product currently under edit resets the form
// to Create mode.
func (p *Pipeline) Delete(id int64) (bool, error) {
	products := p.store.Products()
	idx := catalog.FindByID(products, id)
	if idx < 0 {
		return false, nil
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := p.store.Save(products); err != nil {
		return false, fmt.Errorf("save products: %w", err)
	}

	if p.mode == ModeEdit && p.editingID == id {
		p.Cancel()
	}
	return true, nil
}
