package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/AlecAivazis/survey/v2"

	listgen "github.com/goliatone/go-listgen"
	"github.com/goliatone/go-listgen/pkg/query"
	"github.com/goliatone/go-listgen/pkg/view"
	"github.com/goliatone/go-listgen/pkg/viewschema"
)

func main() {
	schemas := flag.String("schemas", "schemas", "directory holding view definition files")
	viewName := flag.String("view", "", "view to render (prompted when omitted and several exist)")
	records := flag.String("records", "", "JSON file holding the records to list")
	renderer := flag.String("renderer", "vanilla", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	baseURL := flag.String("base-url", "/admin", "URL prefix for generated links")
	rawQuery := flag.String("query", "", "request query string (sort, page, _popup)")
	flag.Parse()

	ctx := context.Background()

	store, err := viewschema.LoadFS(os.DirFS(*schemas))
	if err != nil {
		log.Fatalf("Failed to load view schemas: %v", err)
	}
	if store.Len() == 0 {
		log.Fatalf("No view definitions found under %s", *schemas)
	}

	def, err := pickView(store, *viewName)
	if err != nil {
		log.Fatalf("Failed to select view: %v", err)
	}

	instances, err := loadRecords(*records)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}

	queryValues, err := url.ParseQuery(*rawQuery)
	if err != nil {
		log.Fatalf("Invalid query string: %v", err)
	}

	v := def.View(nil)
	projection := def.Projection()
	listURL := *baseURL + "/" + v.Path
	perPage := def.PageSize
	if perPage < 1 {
		perPage = 20
	}
	pager := query.NewPager(listURL, queryValues, perPage, len(instances))
	pageRecords := paginate(instances, pager.Offset(), pager.Limit())

	outputHTML, err := listgen.GenerateHTML(ctx, listgen.Request{
		View:      v,
		Table:     projection.Table(pageRecords),
		Sort:      query.NewSort(listURL, queryValues, def.SortKeys()...),
		Paginator: pager,
		URLs:      view.PathBuilder{Prefix: *baseURL},
		Query:     queryValues,
		Renderer:  *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate list page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("List page written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func pickView(store *viewschema.Store, name string) (viewschema.Definition, error) {
	if name != "" {
		def, ok := store.Get(name)
		if !ok {
			return viewschema.Definition{}, fmt.Errorf("view %q not defined (have %v)", name, store.Names())
		}
		return def, nil
	}

	names := store.Names()
	if len(names) == 1 {
		def, _ := store.Get(names[0])
		return def, nil
	}

	var chosen string
	prompt := &survey.Select{
		Message: "Which view should be rendered?",
		Options: names,
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return viewschema.Definition{}, err
	}
	def, _ := store.Get(chosen)
	return def, nil
}

func loadRecords(path string) ([]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	instances := make([]any, len(records))
	for i, record := range records {
		instances[i] = record
	}
	return instances, nil
}

func paginate(instances []any, offset, limit int) []any {
	if offset >= len(instances) {
		return nil
	}
	end := offset + limit
	if end > len(instances) {
		end = len(instances)
	}
	return instances[offset:end]
}
