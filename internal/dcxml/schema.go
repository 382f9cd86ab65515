// Package dcxml builds the per-object Dublin Core style metadata records:
// a fixed descriptive block drawn from the partner's export columns, an
// asset block, and one technical instantiation per digitized file.
package dcxml

import "github.com/lehigh-university-libraries/harvester/internal/records"

// Namespace URIs declared on the root element of every record.
const (
	xsiNamespace     = "http://www.w3.org/2001/XMLSchema-instance"
	dcNamespace      = "http://purl.org/dc/elements/1.1/"
	dctermsNamespace = "http://purl.org/dc/terms/"
)

// descriptiveElement defines one element of the descriptive block: its
// prefixed tag, an optional fixed attribute, and where its text comes from.
// Exactly one of field, literal, or extent is set.
type descriptiveElement struct {
	tag       string
	attrKey   string
	attrValue string
	field     string
	literal   string
	extent    bool
}

// value resolves the element's text from a descriptive record.
func (d descriptiveElement) value(rec records.Record) (string, error) {
	switch {
	case d.literal != "":
		return d.literal, nil
	case d.extent:
		return rec.TotalExtent()
	default:
		return rec.Require(d.field)
	}
}

// descriptiveSchema is the full descriptive block in output order. Tags
// repeat (provenance, extent, rights, identifier, description) with distinct
// meanings told apart by attribute or position.
var descriptiveSchema = []descriptiveElement{
	{tag: "dc:identifier", attrKey: "xsi:type", attrValue: "dcterms:URI", field: "Internet Archive URL"},
	{tag: "dc:provenance", literal: "California Revealed"},
	{tag: "dc:provenance", field: "Institution"},
	{tag: "dc:type", field: "Type"},
	{tag: "dc:format", field: "Generation"},
	{tag: "dcterms:medium", field: "Format"},
	{tag: "dcterms:extent", extent: true},
	{tag: "dcterms:extent", field: "Extent (dimensions)"},
	{tag: "dc:title", field: "Main or Supplied Title"},
	{tag: "dcterms:alternative", field: "Additional Title"},
	{tag: "dc:creator", field: "Creator"},
	{tag: "dcterms:created", field: "Date Created"},
	{tag: "dc:date", attrKey: "type", attrValue: "Published", field: "Date Published"},
	{tag: "dc:rights", field: "Copyright Statement"},
	{tag: "dc:rights", attrKey: "type", attrValue: "Country of Creation", field: "Country of Creation"},
	{tag: "dc:language", field: "Language"},
	{tag: "dc:identifier", attrKey: "type", attrValue: "CDNP identifier", field: "CDNP Identifier"},
	{tag: "dc:description", attrKey: "type", attrValue: "serial volume", field: "Serial Volume"},
	{tag: "dc:description", attrKey: "type", attrValue: "serial issue", field: "Serial Issue"},
	{tag: "dc:coverage", attrKey: "type", attrValue: "publication location", field: "Publication Location"},
}

// assetFields are the asset-level elements bound to descriptive columns, in
// output order.
var assetFields = []struct {
	tag   string
	field string
}{
	{"objectIdentifier", "Object Identifier"},
	{"callNumber", "Call Number"},
	{"projectIdentifier", "Project Identifier"},
	{"assetType", "Asset Type"},
	{"description", "Description or Content Summary"},
	{"vendorQualityControlNotes", "Quality Control Notes"},
}

// technicalElements is the fixed element order inside every instantiation's
// technical block. Every element is created; the ones left without text are
// dropped by the pruning pass.
var technicalElements = []string{
	"digitalFileIdentifier",
	"creationDate",
	"fileExtension",
	"standardAndFileWrapper",
	"size",
	"bitDepth",
	"imageWidth",
	"imageLength",
	"compression",
	"samplesPerPixel",
	"xResolution",
	"yResolution",
	"md5",
	"creatingApplicationAndVersion",
	"derivedFrom",
	"digitizerManufacturer",
	"digitizerModel",
	"imageProducer",
}
