// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events over plain HTTP for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// NotifyProviderPushover delivers notifications through the Pushover API.
	NotifyProviderPushover = "pushover"
	// NotifyProviderFCM delivers notifications through Firebase Cloud Messaging.
	NotifyProviderFCM = "fcm"
)
