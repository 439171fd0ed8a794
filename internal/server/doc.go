// Package server runs the loopback print server that hands rendered print
// documents to the system browser.
package server
