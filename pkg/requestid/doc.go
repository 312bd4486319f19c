// Package requestid provides HTTP middleware that tags every request with a
// correlation identifier, so log records from one admin action can be tied
// together when troubleshooting.
package requestid
