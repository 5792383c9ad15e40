// Package constants contains values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env.env value for production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events as HTTP push requests to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// EventTypeEvacuationDispatched is published after an alert batch commits.
	EventTypeEvacuationDispatched = "evacuation.dispatched"
	// EventTypeEvacuationUpdated is published when an evacuation needs its presence re-evaluated.
	EventTypeEvacuationUpdated = "evacuation.updated"
)
