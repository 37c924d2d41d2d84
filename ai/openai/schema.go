// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var violationPrinter = message.NewPrinter(language.English)

// ErrSchemaViolation is returned when an answer parses as JSON but does not
// follow the response schema.
var ErrSchemaViolation = errors.New("answer does not match response schema")

const schemaResource = "situation.schema.json"

// answerSchema is the compiled form of situationResponseSchema.
var answerSchema = mustCompileSchema(situationResponseSchema)

func mustCompileSchema(raw string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse response schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, doc); err != nil {
		panic(fmt.Sprintf("failed to add response schema: %v", err))
	}
	sch, err := compiler.Compile(schemaResource)
	if err != nil {
		panic(fmt.Sprintf("failed to compile response schema: %v", err))
	}
	return sch
}

// validateAnswer checks a parsed JSON document against the response schema.
// Violations are flattened to "location: message" lines.
func validateAnswer(raw string) error {
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return err
	}
	err = answerSchema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	var causes []string
	collectViolations(ve, &causes)
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(causes, "; "))
}

func collectViolations(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(violationPrinter)))
		return
	}
	for _, cause := range ve.Causes {
		collectViolations(cause, out)
	}
}

// decodeAnswer unmarshals a cleaned answer and validates it. A document that
// decodes but violates the schema is returned together with the violation,
// so the caller can still use it when no better answer arrives.
func decodeAnswer(cleaned string) (*answer, error) {
	var reply answer
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, err
	}
	if err := validateAnswer(cleaned); err != nil {
		return &reply, err
	}
	return &reply, nil
}
