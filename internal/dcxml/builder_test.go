package dcxml

import (
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/harvester/internal/records"
)

func fullRecord() records.Record {
	return records.Record{
		"Object Identifier":              "cusb_000123",
		"Internet Archive URL":           "https://archive.org/details/cusb_000123",
		"Institution":                    "UC Santa Barbara Library",
		"Type":                           "Text",
		"Generation":                     "Preservation Master",
		"Format":                         "Newsprint",
		"Extent (total number of pages)": "4",
		"Extent (dimensions)":            "58 x 43 cm",
		"Main or Supplied Title":         "The Daily Nexus",
		"Additional Title":               "Nexus",
		"Creator":                        "Associated Students",
		"Date Created":                   "2019-03-12",
		"Date Published":                 "1971-05-01",
		"Copyright Statement":            "Copyrighted. Rights held by the publisher.",
		"Country of Creation":            "United States",
		"Language":                       "eng",
		"CDNP Identifier":                "cdnp_000123",
		"Serial Volume":                  "51",
		"Serial Issue":                   "118",
		"Publication Location":           "Isla Vista, California",
		"Call Number":                    "LD781.S52",
		"Project Identifier":             "caps_000123",
		"Asset Type":                     "Serial",
		"Description or Content Summary": "Student newspaper issue.",
		"Quality Control Notes":          "",
	}
}

func TestNewRecordElementOrder(t *testing.T) {
	rec, err := NewRecord(fullRecord())
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}

	root := rec.doc.Root()
	if root.Tag != "metadata" {
		t.Fatalf("Expected metadata root, got %s", root.Tag)
	}

	want := []string{
		"dc:identifier",
		"dc:provenance",
		"dc:provenance",
		"dc:type",
		"dc:format",
		"dcterms:medium",
		"dcterms:extent",
		"dcterms:extent",
		"dc:title",
		"dcterms:alternative",
		"dc:creator",
		"dcterms:created",
		"dc:date",
		"dc:rights",
		"dc:rights",
		"dc:language",
		"dc:identifier",
		"dc:description",
		"dc:description",
		"dc:coverage",
		"Assets",
	}

	children := root.ChildElements()
	if len(children) != len(want) {
		t.Fatalf("Expected %d child elements, got %d", len(want), len(children))
	}
	for i, tag := range want {
		if children[i].FullTag() != tag {
			t.Errorf("Expected element %d to be %s, got %s", i, tag, children[i].FullTag())
		}
	}
}

func TestNewRecordAttributesAndValues(t *testing.T) {
	rec, err := NewRecord(fullRecord())
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}
	root := rec.doc.Root()

	for _, attr := range []struct {
		key  string
		want string
	}{
		{"xmlns:xsi", xsiNamespace},
		{"xmlns:dc", dcNamespace},
		{"xmlns:dcterms", dctermsNamespace},
	} {
		if got := root.SelectAttrValue(attr.key, ""); got != attr.want {
			t.Errorf("Expected %s=%s, got %s", attr.key, attr.want, got)
		}
	}

	url := root.ChildElements()[0]
	if got := url.SelectAttrValue("xsi:type", ""); got != "dcterms:URI" {
		t.Errorf("Expected dcterms:URI, got %s", got)
	}
	if url.Text() != "https://archive.org/details/cusb_000123" {
		t.Errorf("Unexpected identifier text %s", url.Text())
	}

	provenance := root.ChildElements()[1]
	if provenance.Text() != "California Revealed" {
		t.Errorf("Expected the fixed provenance, got %s", provenance.Text())
	}

	published := root.FindElement("dc:date")
	if published == nil {
		t.Fatal("Expected dc:date element")
	}
	if got := published.SelectAttrValue("type", ""); got != "Published" {
		t.Errorf("Expected type=Published, got %s", got)
	}

	cdnp := root.FindElement("dc:identifier[@type='CDNP identifier']")
	if cdnp == nil {
		t.Fatal("Expected CDNP identifier element")
	}
	if cdnp.Text() != "cdnp_000123" {
		t.Errorf("Expected cdnp_000123, got %s", cdnp.Text())
	}

	assets := root.FindElement("Assets")
	if assets == nil {
		t.Fatal("Expected Assets element")
	}
	assetTags := []string{
		"objectIdentifier",
		"callNumber",
		"projectIdentifier",
		"assetType",
		"description",
		"vendorQualityControlNotes",
		"AssetPart",
	}
	children := assets.ChildElements()
	if len(children) != len(assetTags) {
		t.Fatalf("Expected %d asset children, got %d", len(assetTags), len(children))
	}
	for i, tag := range assetTags {
		if children[i].Tag != tag {
			t.Errorf("Expected asset child %d to be %s, got %s", i, tag, children[i].Tag)
		}
	}
	if got := assets.FindElement("objectIdentifier").Text(); got != "cusb_000123" {
		t.Errorf("Expected cusb_000123, got %s", got)
	}
}

func TestNewRecordMissingColumn(t *testing.T) {
	rec := fullRecord()
	delete(rec, "Language")

	if _, err := NewRecord(rec); err == nil {
		t.Fatal("Expected error for missing column, got nil")
	}
}

func TestRecordPruneAndSerialize(t *testing.T) {
	src := fullRecord()
	src["Additional Title"] = ""

	rec, err := NewRecord(src)
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}
	rec.Prune()

	out, err := rec.doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString failed: %v", err)
	}

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("Expected XML declaration")
	}
	if !strings.Contains(out, "<dc:title>The Daily Nexus</dc:title>") {
		t.Error("Expected title element in output")
	}
	if strings.Contains(out, "dcterms:alternative") {
		t.Error("Expected empty alternative title to be pruned")
	}
	if strings.Contains(out, "vendorQualityControlNotes") {
		t.Error("Expected empty quality control notes to be pruned")
	}
	// No instantiations were added, so the whole asset part is empty.
	if strings.Contains(out, "AssetPart") {
		t.Error("Expected empty AssetPart to be pruned")
	}
}
