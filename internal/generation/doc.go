// Package generation defines the boundary between the lesson service and
// external text-generation (LLM) services.
//
// A Generator turns a Request (system instruction, prompt, session id) into
// raw model text. Interpreting that text as lesson fields is the caller's
// job, so providers stay free of domain types. Implementations live in
// internal/platform/gemini and internal/platform/openai; NewUnconfigured
// stands in when no API key is set.
package generation
