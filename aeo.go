// Package aeo generates Answer Engine Optimization artifacts for web sites:
// robots.txt, llms.txt, llms-full.txt, sitemap.xml, a docs.json manifest,
// an ai-index.json retrieval index and per-page Markdown files.
//
// The heart of the package is content extraction: rendered HTML is turned
// into clean Markdown suitable for language-model consumption, then chunked,
// keyworded and addressed by content-derived IDs.
//
// This package contains domain types, interfaces and pure helpers following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., regexp/,
// goquery/, sqlite/, rod/).
package aeo

// Version is the release version reported by the CLI and generators.
const Version = "0.0.2"

// UserAgent identifies aeo in outbound HTTP requests.
const UserAgent = "aeo.js/" + Version + " (+" + GeneratorURL + ")"
