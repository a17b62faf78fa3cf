/*
Package observability turns workbench lifecycle hooks into Prometheus metrics and structured logs.

Hooks never influence the data model; they only observe OperationEvent and StepEvent values.
*/
package observability
