// Package services orchestrates the tender pipeline: fetching the
// aggregated record map from the data provider, normalizing and filtering
// it, and producing exports with their audit trail.
package services
