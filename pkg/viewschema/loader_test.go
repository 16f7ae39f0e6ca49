package viewschema_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/view"
	"github.com/goliatone/go-listgen/pkg/viewschema"
)

const widgetSchema = `
views:
  widget:
    kind: Widget
    path: Store/Widget
    page_size: 25
    columns:
      - key: name
      - key: stock_qty
        label: In Stock
    actions:
      - name: create
        icon: icon-plus
      - name: delete
        requires_instance: true
    ancestors:
      - label: Acme Store
        url: /stores/5
`

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/widget.yaml": &fstest.MapFile{Data: []byte(widgetSchema)},
	}

	store, err := viewschema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("store has %d views", store.Len())
	}

	def, ok := store.Get("widget")
	if !ok {
		t.Fatalf("widget view missing")
	}
	if def.Kind != "Widget" || def.PageSize != 25 {
		t.Fatalf("unexpected definition: %+v", def)
	}

	v := def.View(nil)
	if v.Path != "Store/Widget" || !v.LinkFirst {
		t.Fatalf("unexpected view: %+v", v)
	}
	if len(v.LinkedActions()) != 1 || len(v.InstanceActions()) != 1 {
		t.Fatalf("action split wrong: %+v", v.Actions)
	}
	if len(v.Ancestors) != 1 || v.Ancestors[0].Label != "Acme Store" {
		t.Fatalf("ancestors wrong: %+v", v.Ancestors)
	}

	headers := def.Projection().Headers()
	want := []model.Header{
		{Key: "name", Label: "Name"},
		{Key: "stock_qty", Label: "In Stock"},
	}
	if diff := cmp.Diff(want, headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"name", "stock_qty"}, def.SortKeys()); diff != "" {
		t.Fatalf("sort keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_JSONAndPermissionWiring(t *testing.T) {
	fsys := fstest.MapFS{
		"views.json": &fstest.MapFile{Data: []byte(`{
			"views": {
				"note": {
					"kind": "Note",
					"link_first": false,
					"columns": [{"key": "title"}],
					"actions": [{"name": "create"}]
				}
			}
		}`)},
	}

	store, err := viewschema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, _ := store.Get("note")

	denied := func(string) view.PermissionFunc {
		return func(any) (bool, error) { return false, nil }
	}
	v := def.View(denied)
	if v.LinkFirst {
		t.Fatalf("link_first override ignored")
	}
	ok, err := v.Actions[0].Allowed(nil)
	if err != nil || ok {
		t.Fatalf("permission not wired: ok=%v err=%v", ok, err)
	}
}

func TestLoadFS_Validation(t *testing.T) {
	cases := map[string]string{
		"duplicate view": `
views:
  widget:
    kind: Widget
    columns: [{key: name}]
`,
		"missing kind": `
views:
  other:
    columns: [{key: name}]
`,
		"no columns": `
views:
  other:
    kind: Other
`,
	}

	base := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("views:\n  widget:\n    kind: Widget\n    columns: [{key: name}]\n")},
	}

	for name, schema := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for k, v := range base {
				fsys[k] = v
			}
			fsys["z.yaml"] = &fstest.MapFile{Data: []byte(schema)}

			if _, err := viewschema.LoadFS(fsys); err == nil {
				t.Fatalf("expected load failure")
			}
		})
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := viewschema.LoadFS(nil)
	if err != nil {
		t.Fatalf("nil fs: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}
