package hip412_test

import (
	"encoding/json"
	"fmt"

	"github.com/vvka-141/nftmeta/pkg/hip412"
)

// A document without the required image property yields a single schema error.
func ExampleValidate() {
	metadata := map[string]any{
		"creator":     "HANGRY BARBOONS",
		"description": "HANGRY BARBOONS are 4,444 unique citizens from the United Hashgraph of Planet Earth. Designed and illustrated by President HANGRY.",
		"format":      "none",
		"name":        "HANGRY BARBOON #2343",
		"type":        "image/png",
		"properties":  map[string]any{"edition": 2343},
		"attributes": []map[string]any{
			{"trait_type": "Background", "value": "Yellow"},
			{"trait_type": "Fur", "value": "Gold"},
			{"trait_type": "Clothing", "value": "Floral Jacket"},
			{"trait_type": "Mouth", "value": "Tongue"},
			{"trait_type": "Sing", "value": "None"},
		},
	}

	result := hip412.Validate(metadata, hip412.DefaultVersion)

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
	// Output:
	// {
	//   "errors": [
	//     {
	//       "type": "schema",
	//       "msg": "requires property 'image'",
	//       "path": "instance"
	//     }
	//   ],
	//   "warnings": []
	// }
}
