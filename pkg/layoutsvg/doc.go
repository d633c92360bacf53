// Package layoutsvg renders a decoded, validated PlatformLayout over its
// World as an SVG image: one grid cell per world tile, terrain tinted by
// its support state, and a rectangle per placed platform.
package layoutsvg
