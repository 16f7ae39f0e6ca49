package openapi_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/openapi"
)

const widgetDocument = `
openapi: 3.0.3
info:
  title: Inventory
  version: 1.0.0
paths: {}
components:
  schemas:
    Widget:
      type: object
      properties:
        name:
          type: string
          x-listgen:
            order: 1
        stock_qty:
          type: integer
          x-listgen:
            order: 2
            label: In Stock
        secret_token:
          type: string
          x-listgen:
            hidden: true
        updated_at:
          type: string
          format: date-time
        created_at:
          type: string
          format: date-time
    Empty:
      type: object
`

func TestColumnsFromSchema(t *testing.T) {
	columns, err := openapi.ColumnsFromSchema(context.Background(), []byte(widgetDocument), "Widget")
	if err != nil {
		t.Fatalf("ColumnsFromSchema returned error: %v", err)
	}

	want := []model.ColumnSpec{
		{Key: "name", Label: "Name"},
		{Key: "stock_qty", Label: "In Stock"},
		{Key: "created_at", Label: "Created At"},
		{Key: "updated_at", Label: "Updated At"},
	}
	if diff := cmp.Diff(want, columns, cmpopts.IgnoreFields(model.ColumnSpec{}, "Value")); diff != "" {
		t.Fatalf("column mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnsFromSchemaErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := openapi.ColumnsFromSchema(ctx, nil, "Widget"); err == nil {
		t.Fatal("expected error for empty payload")
	}

	if _, err := openapi.ColumnsFromSchema(ctx, []byte(widgetDocument), "Gadget"); err == nil || !strings.Contains(err.Error(), "Gadget") {
		t.Fatalf("expected missing component error, got %v", err)
	}

	if _, err := openapi.ColumnsFromSchema(ctx, []byte(widgetDocument), "Empty"); err == nil || !strings.Contains(err.Error(), "no properties") {
		t.Fatalf("expected no-properties error, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := openapi.ColumnsFromSchema(cancelled, []byte(widgetDocument), "Widget"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
