// Package connector implements clients for external services: the
// OpenAI-compatible inference backend, the OpenWeather API and the Agmarknet
// market data API.
package connector
