// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API through google.golang.org/genai.
//
// The adapter only moves text across the boundary: it sends the system
// instruction and prompt, asks for a JSON response, and returns the model
// text. Blocked prompts, safety stops and empty candidates are translated to
// the generation package's sentinel errors. Calls are made once; there is no
// retry loop.
package gemini
