// Package corpus is the serialization boundary of the dataset: the text
// graph format, property JSON files, the on-disk layout and the
// natural-language descriptions used to build prompts.
package corpus
