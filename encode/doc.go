// Package encode renders computed span reports for tooling: as JSON or YAML
// documents, or as source text annotated with colored markers.
package encode
