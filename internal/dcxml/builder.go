package dcxml

import (
	"github.com/beevik/etree"
	"github.com/lehigh-university-libraries/harvester/internal/records"
)

// Record is one archival object's metadata document under construction.
type Record struct {
	doc       *etree.Document
	assetPart *etree.Element
}

// NewRecord builds the descriptive and asset skeleton for one archival
// object from its descriptive record. A required column missing from the
// source is an error; empty values are kept and removed by Prune after the
// instantiations are in place.
func NewRecord(rec records.Record) (*Record, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("metadata")
	root.CreateAttr("xmlns:xsi", xsiNamespace)
	root.CreateAttr("xmlns:dc", dcNamespace)
	root.CreateAttr("xmlns:dcterms", dctermsNamespace)

	for _, def := range descriptiveSchema {
		value, err := def.value(rec)
		if err != nil {
			return nil, err
		}
		el := root.CreateElement(def.tag)
		if def.attrKey != "" {
			el.CreateAttr(def.attrKey, def.attrValue)
		}
		el.SetText(value)
	}

	assets := root.CreateElement("Assets")
	for _, af := range assetFields {
		value, err := rec.Require(af.field)
		if err != nil {
			return nil, err
		}
		assets.CreateElement(af.tag).SetText(value)
	}
	assetPart := assets.CreateElement("AssetPart")

	return &Record{doc: doc, assetPart: assetPart}, nil
}

// Prune drops every element that has neither text nor children: empty
// descriptive fields and technical fields the extraction tool did not
// report.
func (r *Record) Prune() {
	pruneEmpty(r.doc.Root())
}

// WriteFile serializes the record with two-space indentation.
func (r *Record) WriteFile(path string) error {
	r.doc.Indent(2)
	return r.doc.WriteToFile(path)
}
