// Package briefly turns web pages and pasted text into structured records.
// It fetches a document, extracts its readable text through an ordered
// chain of extraction strategies, focuses the text on its most relevant
// region, asks an LLM to structure it as JSON, normalizes the reply and
// stores accepted results.
//
// This package contains domain types, interfaces and pure domain logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// readability/, openai/).
package briefly
