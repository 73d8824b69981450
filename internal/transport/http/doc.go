// Package http exposes the service API over chi: filtered tender views,
// exports, the audit history and health.
package http
