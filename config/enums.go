package config

// Set of fragments used by the translator.
// ENUM(memoir, nostarch)
type MappingVariant int

// Where rule separating table header from table body is placed.
// ENUM(head-close, body-open)
type HeaderRule int
