// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (geometry, display layout, wallpaper sources) and
// contracts (interfaces) only.
package domain
