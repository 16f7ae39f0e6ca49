// Package view holds the descriptors the page composer consumes: views,
// their ancestor chains, and permission-gated actions. Action scope is a
// tagged variant (view, view-under-ancestor, instance) resolved once per
// action so the link dispatch cannot drift from the permission check that
// gated it.
package view
