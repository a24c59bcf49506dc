// Package openai implements generation.Generator on the OpenAI chat
// completions API, or any compatible endpoint selected with
// llm.openai_base_url, using github.com/openai/openai-go.
package openai
