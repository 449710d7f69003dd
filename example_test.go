package yamlns_test

import (
	"fmt"

	"github.com/0xalexb/yamlns"
)

func ExampleNew() {
	cfg, err := yamlns.New(map[string]any{
		"name": "Bot",
		"nested": map[string]any{
			"greeting": "hi",
		},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	name, _ := cfg.Get("name")
	greeting, _ := cfg.Get("nested.greeting")

	fmt.Printf("%v says %v\n", name, greeting)
	// Output: Bot says hi
}

func ExampleNamespace_Set() {
	cfg, err := yamlns.New(map[string]any{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	// Dotted paths create intermediate namespaces on demand.
	_ = cfg.Set("server.http.port", 8080)

	port, _ := cfg.Get("server.http.port")

	fmt.Println(port)
	// Output: 8080
}

func ExampleNamespace_Format() {
	cfg, err := yamlns.New(map[string]any{
		"user": "admin",
		"db": map[string]any{
			"host": "db.example.com",
			"port": 5432,
		},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Println(cfg.Format("postgres://{user}@{db.host}:{db.port}"))
	// Output: postgres://admin@db.example.com:5432
}

func ExampleNamespace_Freeze() {
	cfg, err := yamlns.New(map[string]any{"key": "value"})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	cfg.Freeze()

	err = cfg.Set("key", "other")

	fmt.Println(err)
	// Output: setting key "key": namespace is frozen
}
