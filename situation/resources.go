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

package situation

import "github.com/poiesic/therapymatch/core"

// ResourceKind tells how a crisis resource is reached.
type ResourceKind string

const (
	ResourcePhone ResourceKind = "phone"
	ResourceWeb   ResourceKind = "web"
)

// Resource is a crisis service shown instead of therapist matches when a
// crisis indicator was found.
type Resource struct {
	Name        string       `json:"name"`
	Kind        ResourceKind `json:"kind"`
	Phone       string       `json:"phone,omitempty"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description"`
	Available   string       `json:"available"`
}

var resourcesDE = []Resource{
	{Name: "Telefonseelsorge", Kind: ResourcePhone, Phone: "0800 111 0 111", Description: "Kostenlose, anonyme Beratung rund um die Uhr", Available: "24/7"},
	{Name: "Telefonseelsorge (alternativ)", Kind: ResourcePhone, Phone: "0800 111 0 222", Description: "Kostenlose, anonyme Beratung rund um die Uhr", Available: "24/7"},
	{Name: "Kinder- und Jugendtelefon", Kind: ResourcePhone, Phone: "116 111", Description: "Beratung speziell für Kinder und Jugendliche", Available: "Mo-Sa 14-20 Uhr"},
	{Name: "Online-Beratung", Kind: ResourceWeb, URL: "https://online.telefonseelsorge.de", Description: "Schriftliche Beratung per Chat oder E-Mail", Available: "Rund um die Uhr erreichbar"},
	{Name: "Notruf", Kind: ResourcePhone, Phone: "112", Description: "Bei akuter Gefahr", Available: "24/7"},
}

var resourcesEN = []Resource{
	{Name: "Telefonseelsorge (Germany)", Kind: ResourcePhone, Phone: "0800 111 0 111", Description: "Free, anonymous counseling around the clock", Available: "24/7"},
	{Name: "Telefonseelsorge (alternative)", Kind: ResourcePhone, Phone: "0800 111 0 222", Description: "Free, anonymous counseling around the clock", Available: "24/7"},
	{Name: "International Crisis Lines", Kind: ResourceWeb, URL: "https://findahelpline.com", Description: "Find crisis support in your country", Available: "Varies by location"},
	{Name: "Emergency", Kind: ResourcePhone, Phone: "112", Description: "In acute danger", Available: "24/7"},
}

// CrisisResources returns the crisis services for lang. English is used
// for anything but German. The returned slice is a copy.
func CrisisResources(lang core.Language) []Resource {
	src := resourcesEN
	if lang == core.LanguageGerman {
		src = resourcesDE
	}
	return append([]Resource(nil), src...)
}
