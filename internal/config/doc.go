// Package config loads the optional user defaults file.
//
// A defaults file lets users pin their preferred word count, separator
// and transforms without repeating flags. Two formats are accepted:
// JSONC (JSON with comments, stripped with github.com/tidwall/jsonc
// before standard parsing) and YAML (gopkg.in/yaml.v3). The loader
// checks $PPGEN_CONFIG first, then config.jsonc and config.yaml under
// os.UserConfigDir()/ppgen. A missing file is not an error — it simply
// means built-in defaults apply. Explicit flags always win over the
// file.
package config
