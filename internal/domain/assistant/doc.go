// Package assistant defines the conversational core of the farmer assistant:
// language detection for mixed English/Hindi input, agricultural context
// tagging, Llama-2 style prompt construction, generation parameter handling
// and the bilingual canned-response catalog used when no inference backend
// is available.
package assistant
