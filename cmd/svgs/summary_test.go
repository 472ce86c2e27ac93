package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/treyhoover/svgs/internal/annotate"
	"github.com/treyhoover/svgs/internal/batch"
)

func TestRenderSummaryPlain(t *testing.T) {
	summary := &batch.Summary{
		Found:          4,
		Annotated:      2,
		Skipped:        1,
		Failed:         1,
		CatalogPath:    "/tmp/images/catalog.md",
		CatalogEntries: 3,
		Failures: []batch.Failure{
			{Item: annotate.Item{Path: "/tmp/images/pets/dog.svg"}, Kind: "describe", Err: errors.New("service down")},
		},
	}

	out := renderSummary(summary, false)
	for _, want := range []string{
		"found: 4",
		"annotated: 2",
		"skipped: 1",
		"failed: 1",
		"catalog: /tmp/images/catalog.md",
		"failed (describe): /tmp/images/pets/dog.svg",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryTableOmitsCatalogForFlatRuns(t *testing.T) {
	summary := &batch.Summary{Found: 1, Annotated: 1}

	out := renderSummary(summary, true)
	if !strings.Contains(out, "Annotated") {
		t.Fatalf("table missing annotated row:\n%s", out)
	}
	if strings.Contains(out, "Catalog") {
		t.Fatalf("flat summary should not mention a catalog:\n%s", out)
	}
}
