package components

import (
	"encoding/json"
	"log"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// JSONLD renders v as a structured data script block. json.Marshal escapes
// '<' and '>' so the payload cannot close the script element.
func JSONLD(nonce string, v interface{}) g.Node {
	return Script(
		Type("application/ld+json"),
		g.If(nonce != "", g.Attr("nonce", nonce)),
		g.Raw(JSON(v)),
	)
}
