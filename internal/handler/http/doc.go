// Package http implements the HTTP transport layer of the file exchange
// server.
//
// A single catch-all route maps every request path onto the upload root:
// GET and HEAD serve files and directory listings, POST ingests multipart
// uploads. Request tracing, access logging, panic recovery and response
// compression are applied here before requests reach the service layer.
package http
