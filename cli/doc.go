// Package cli is the interactive front end of socialnet: it parses process
// flags, then runs a line-oriented command shell over a network.Network.
// All console formatting lives here; the engine never prints.
package cli
