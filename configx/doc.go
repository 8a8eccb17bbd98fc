// Package configx provides configuration binding and validation helpers.
//
// Overview:
//   - Responsibility: Fill configuration structs from environment variables and validate them
//   - Key Types: ValidatorOption, EnvOptions
//   - Concurrency Model: Stateless helpers, safe for concurrent use
//   - Error Semantics: Binding and validation failures are returned as errors naming the field
//   - Performance Notes: Reflection runs once per command invocation
//
// Usage:
//
//	snapshot := configx.EnvSnapshot(configx.EnvOptions{Prefix: "NETGEN_"})
//	if err := configx.BindEnv(snapshot, &cfg); err != nil {
//	    return err
//	}
//	if err := configx.ValidateStruct(configx.NewValidator(configx.WithYAMLFieldNames()), cfg); err != nil {
//	    return err
//	}
package configx
