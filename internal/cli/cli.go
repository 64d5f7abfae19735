// Package cli implements the cabinetfit command-line interface.
//
// The commands wrap the layout engine, the appliance catalog, the obstacle
// importers and the exporters:
//   - resolve: door width for a span and door count
//   - distribute: modules for a single span
//   - upper: upper section with hood and reference cabinet anchors
//   - fill: modules around fixed obstacles
//   - recommend, fridge, models: refrigerator catalog queries
//   - compare: what-if comparison of layout constants
//   - config, backup: configuration and data management
//
// All commands support --verbose (-v) for debug-level logging and --config
// to load layout constants from a TOML or YAML file.
package cli
