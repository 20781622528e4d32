// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/graphqldoc"
)

// defaultExt is the page file extension.
const defaultExt = "md"

// fileConfig is the YAML config file layout.
type fileConfig struct {
	Output               string            `yaml:"output"`
	Ext                  string            `yaml:"ext"`
	BasePath             string            `yaml:"base_path"`
	Deprecated           string            `yaml:"deprecated"`
	Example              string            `yaml:"example"`
	GroupByDirective     string            `yaml:"group_by_directive"`
	SkipDirectives       []string          `yaml:"skip_directives"`
	OnlyDirectives       []string          `yaml:"only_directives"`
	TagDirectives        []string          `yaml:"tag_directives"`
	DescribeDirectives   map[string]string `yaml:"describe_directives"`
	TemplateFile         string            `yaml:"template_file"`
	Workers              int               `yaml:"workers"`
	HideParentTypePrefix bool              `yaml:"hide_parent_type_prefix"`
	HideRelations        bool              `yaml:"hide_relations"`
	HideBadges           bool              `yaml:"hide_badges"`
	HideCode             bool              `yaml:"hide_code"`
	Fingerprint          bool              `yaml:"fingerprint"`
	FrontMatter          map[string]any    `yaml:"front_matter"`
}

// defaultConfig returns config used without a config file.
func defaultConfig() fileConfig {
	return fileConfig{Ext: defaultExt}
}

// loadConfig decodes a YAML config file rejecting unknown keys.
func loadConfig(path string) (fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := defaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return fileConfig{}, fmt.Errorf("decode config file %q: %w", path, err)
	}

	if strings.TrimSpace(cfg.Ext) == "" {
		cfg.Ext = defaultExt
	}

	return cfg, nil
}

// applyFlags overrides config values with explicitly set flags.
func (cfg *fileConfig) applyFlags(command *generateCommand) {
	render := command.RenderFlags

	setString(&cfg.Output, command.Output)
	setString(&cfg.Ext, command.Ext)
	setString(&cfg.BasePath, render.BasePath)
	setString(&cfg.Deprecated, render.Deprecated)
	setString(&cfg.Example, render.Example)
	setString(&cfg.GroupByDirective, render.GroupByDirective)
	setString(&cfg.TemplateFile, render.TemplatePath)

	cfg.SkipDirectives = append(cfg.SkipDirectives, render.SkipDirectives...)
	cfg.OnlyDirectives = append(cfg.OnlyDirectives, render.OnlyDirectives...)
	cfg.TagDirectives = append(cfg.TagDirectives, render.TagDirectives...)

	if render.Workers > 0 {
		cfg.Workers = render.Workers
	}

	cfg.HideParentTypePrefix = cfg.HideParentTypePrefix || render.NoParentPrefix
	cfg.HideRelations = cfg.HideRelations || render.NoRelations
	cfg.HideBadges = cfg.HideBadges || render.NoBadges
	cfg.HideCode = cfg.HideCode || render.NoCode
	cfg.Fingerprint = cfg.Fingerprint || render.Fingerprint
}

// renderOptions converts config into renderer options.
func (cfg fileConfig) renderOptions() (graphqldoc.Options, error) {
	mode, err := graphqldoc.ParseDeprecationMode(cfg.Deprecated)
	if err != nil {
		return graphqldoc.Options{}, err
	}

	example, err := graphqldoc.ParseExampleMode(cfg.Example)
	if err != nil {
		return graphqldoc.Options{}, err
	}

	opt := graphqldoc.Options{
		BasePath:             cfg.BasePath,
		Deprecated:           mode,
		Example:              example,
		SkipDirectives:       cfg.SkipDirectives,
		OnlyDirectives:       cfg.OnlyDirectives,
		HideParentTypePrefix: cfg.HideParentTypePrefix,
		HideRelations:        cfg.HideRelations,
		HideBadges:           cfg.HideBadges,
		HideCode:             cfg.HideCode,
		Fingerprint:          cfg.Fingerprint,
		FrontMatter:          cfg.FrontMatter,
		Workers:              cfg.Workers,
		CustomDirectives:     cfg.customDirectives(),
	}

	if strings.TrimSpace(cfg.GroupByDirective) != "" {
		group, err := graphqldoc.ParseGroupByDirective(cfg.GroupByDirective)
		if err != nil {
			return graphqldoc.Options{}, err
		}

		opt.GroupByDirective = group
	}

	if cfg.TemplateFile != "" {
		text, err := os.ReadFile(cfg.TemplateFile)
		if err != nil {
			return graphqldoc.Options{}, fmt.Errorf("read template file %q: %w", cfg.TemplateFile, err)
		}

		opt.TemplateText = string(text)
	}

	return opt, nil
}

// customDirectives registers tag and descriptor resolvers declared in config.
func (cfg fileConfig) customDirectives() graphqldoc.CustomDirectiveMap {
	if len(cfg.TagDirectives) == 0 && len(cfg.DescribeDirectives) == 0 {
		return nil
	}

	out := make(graphqldoc.CustomDirectiveMap)
	for _, name := range cfg.TagDirectives {
		name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		if name == "" {
			continue
		}

		item := out[name]
		item.Tag = graphqldoc.DirectiveTag("info")
		out[name] = item
	}

	for name, format := range cfg.DescribeDirectives {
		name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		if name == "" {
			continue
		}

		item := out[name]
		item.Descriptor = graphqldoc.DirectiveDescriptor(format)
		out[name] = item
	}

	return out
}

// setString replaces target with a non-blank value.
func setString(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}
