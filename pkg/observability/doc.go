/*
Package observability provides tools for monitoring the tempera calculator.

It turns calculator lifecycle hooks into Prometheus metrics and structured log lines,
so the HTTP and MCP surfaces can be watched without touching the calculation code.
*/
package observability
