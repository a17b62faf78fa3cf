/*
Package session keeps the workbenches of concurrent users apart.

A Workbench is single-threaded. The Manager registers one per session ID and
serializes every access to it through a per-ID lock, so the HTTP and MCP
adapters can serve many clients without sharing or racing on container state.
Sessions live in memory only.
*/
package session
