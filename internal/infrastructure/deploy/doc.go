// Package deploy implements feature branch deployments and pipeline lifecycle
// control by orchestrating external tools (gcloud, kubectl, fly). External
// commands run through a Runner so sequencing and argument construction stay
// testable without the tools installed.
package deploy
