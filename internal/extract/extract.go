// Package extract recovers artifact bodies from raw model responses.
//
// Model output is free text that may wrap the wanted code in markdown fences,
// prose, or nothing at all. Extraction is best-effort by design: when no fence
// is found the whole trimmed response is returned, and callers cannot tell a
// clean extraction from the fallback. Downstream validity of the extracted
// text (HCL, YAML, Dockerfile, shell) is the model's contract, not ours.
package extract

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	fenceGeneric = regexp.MustCompile("(?s)```\n(.*?)\n```")
	fenceInline  = regexp.MustCompile("(?s)```(.*?)```")
)

// Fenced extracts the first fenced code block from a response.
//
// Patterns are tried in priority order: a fence tagged with one of the given
// language hints (the tag is optional, so a bare fence matches too), then a
// generic newline-delimited fence, then an inline fence. The first pattern
// that matches anywhere in the text wins and its captured body is returned
// trimmed. When nothing matches the whole input is returned trimmed.
//
// Total over its input: never fails, including for empty text.
func Fenced(response string, langs ...string) string {
	if len(langs) > 0 {
		tagged := regexp.MustCompile("(?s)```(?:" + strings.Join(langs, "|") + ")?\n(.*?)\n```")
		if m := tagged.FindStringSubmatch(response); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if m := fenceGeneric.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fenceInline.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}

	// No fence found: treat the response itself as the artifact body.
	return strings.TrimSpace(response)
}

// Terraform extracts a Terraform/HCL body.
func Terraform(response string) string {
	return Fenced(response, "terraform", "hcl")
}

// YAML extracts a YAML body.
func YAML(response string) string {
	return Fenced(response, "yaml", "yml")
}

// Dockerfile extracts a Dockerfile body.
func Dockerfile(response string) string {
	return Fenced(response, "dockerfile", "docker")
}

// Script extracts a shell script body.
func Script(response string) string {
	return Fenced(response, "bash", "sh", "shell")
}

// Known manifest kinds searched for when a fragment does not parse as YAML.
// Order matters: the first literal found in the fragment assigns the key.
var kindMarkers = []struct {
	marker string
	key    string
}{
	{"Deployment", "deployment"},
	{"Service", "service"},
	{"Ingress", "ingress"},
}

// SplitManifests splits a combined multi-document YAML response on the "---"
// separator and keys each fragment by its declared kind, lower-cased.
//
// A fragment whose kind cannot be recovered by YAML parsing falls back to a
// substring search for known kind literals. A fragment that fails both is
// dropped; the second return value counts dropped fragments so the caller can
// surface a warning. Duplicate kinds overwrite earlier entries.
//
// Total over its input: never fails, returns an empty map for empty text.
func SplitManifests(response string) (map[string]string, int) {
	manifests := make(map[string]string)
	dropped := 0

	for _, doc := range strings.Split(response, "---") {
		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}

		kind, parsed := parseKind(doc)
		if parsed {
			if kind == "" {
				// Parsed cleanly but declares no kind: nothing to key it by.
				dropped++
				continue
			}
			manifests[kind] = doc
			continue
		}

		// Fragment is not valid YAML; fall back to literal markers.
		if key, ok := matchKindMarker(doc); ok {
			manifests[key] = doc
			continue
		}

		dropped++
	}

	return manifests, dropped
}

// parseKind attempts a structured parse of the fragment. The second return
// value reports whether the fragment parsed as YAML at all.
func parseKind(doc string) (string, bool) {
	var meta struct {
		Kind string `yaml:"kind"`
	}
	if err := yaml.Unmarshal([]byte(doc), &meta); err != nil {
		return "", false
	}
	return strings.ToLower(meta.Kind), true
}

// matchKindMarker falls back to a literal substring search for known kinds.
func matchKindMarker(doc string) (string, bool) {
	for _, km := range kindMarkers {
		if strings.Contains(doc, km.marker) {
			return km.key, true
		}
	}
	return "", false
}
