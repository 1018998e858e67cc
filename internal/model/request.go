// Package model defines the request types exchanged with the classification service.
package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/po-classifier/internal/common"
)

// ClassificationRequest is one PO line item submitted for categorization.
type ClassificationRequest struct {
	Description string
	Supplier    string
}

// NewClassificationRequest validates the form input and builds a request.
// The description must contain something other than whitespace; the
// supplier is optional. Values are kept exactly as entered.
func NewClassificationRequest(description, supplier string) (ClassificationRequest, error) {
	if strings.TrimSpace(description) == "" {
		return ClassificationRequest{}, common.NewUserError("Please enter a PO description.", common.ErrEmptyDescription)
	}

	return ClassificationRequest{
		Description: description,
		Supplier:    supplier,
	}, nil
}

// HasSupplier reports whether a supplier was given.
func (r ClassificationRequest) HasSupplier() bool {
	return strings.TrimSpace(r.Supplier) != ""
}

// String is used in log lines.
func (r ClassificationRequest) String() string {
	if r.HasSupplier() {
		return fmt.Sprintf("%q (supplier %q)", r.Description, r.Supplier)
	}
	return fmt.Sprintf("%q", r.Description)
}
