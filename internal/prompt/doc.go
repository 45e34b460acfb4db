// Package prompt implements domain.Prompter with small bubbletea programs.
//
// Two prompts exist: a y/N confirmation before overwriting the output file
// and a free-text prompt for a different output name. Both report
// domain.ErrPromptCancelled on ctrl+c or esc.
package prompt
