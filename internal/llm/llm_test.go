package llm

import (
	"testing"

	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/stretchr/testify/require"
)

func testRequest(t *testing.T, description, supplier string) model.ClassificationRequest {
	t.Helper()
	req, err := model.NewClassificationRequest(description, supplier)
	require.NoError(t, err)
	return req
}
