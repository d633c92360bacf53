// Package project defines the on-disk project file bundling a World, a
// platform Catalog, PlatformLimits, and an objective choice. It follows a
// read-file/unmarshal/validate shape, using gopkg.in/yaml.v3 as the
// concrete container format; the world's grid is persisted as an array
// of equal-length strings, one per row.
package project
