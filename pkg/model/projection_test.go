package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listgen/pkg/model"
)

type widget struct {
	Name      string
	StockQty  int
	Published bool
}

func (w widget) DisplayName() string {
	return "Widget " + w.Name
}

func TestProjection_HeadersDeriveLabels(t *testing.T) {
	p := model.NewProjection(
		model.Field("name"),
		model.Field("stock_qty"),
		model.ColumnSpec{Key: "published", Label: "Live?"},
	)

	want := []model.Header{
		{Key: "name", Label: "Name"},
		{Key: "stock_qty", Label: "Stock Qty"},
		{Key: "published", Label: "Live?"},
	}
	if diff := cmp.Diff(want, p.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestProjection_ProjectStruct(t *testing.T) {
	p := model.NewProjection(
		model.Field("name"),
		model.Field("stock_qty"),
		model.Field("display_name"),
		model.Field("missing"),
	)

	row := p.Project(widget{Name: "anvil", StockQty: 3})

	want := []any{"anvil", 3, "Widget anvil", nil}
	if diff := cmp.Diff(want, row.Cells); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestProjection_ProjectMapAndComputed(t *testing.T) {
	p := model.NewProjection(
		model.Field("name"),
		model.Column("shout", func(instance any) any {
			record := instance.(map[string]any)
			return record["name"].(string) + "!"
		}),
	)

	row := p.Project(map[string]any{"name": "anvil"})

	want := []any{"anvil", "anvil!"}
	if diff := cmp.Diff(want, row.Cells); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestProjection_SourceIsSinglePass(t *testing.T) {
	p := model.NewProjection(model.Field("name"))
	source := p.Source([]any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	})

	var seen []any
	for {
		row, ok := source.Next()
		if !ok {
			break
		}
		seen = append(seen, row.Cells[0])
	}
	if diff := cmp.Diff([]any{"a", "b"}, seen); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	if _, ok := source.Next(); ok {
		t.Fatalf("drained source should not yield more rows")
	}
}

func TestLabelize(t *testing.T) {
	cases := map[string]string{
		"name":        "Name",
		"created_at":  "Created At",
		"stock-count": "Stock Count",
		"a":           "A",
	}
	for key, want := range cases {
		if got := model.Labelize(key); got != want {
			t.Fatalf("Labelize(%q) = %q, want %q", key, got, want)
		}
	}
}
