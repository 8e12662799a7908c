// Package config provides configuration parsing for weave.
//
// The configuration is stored in weave.json at the project root.
// This package handles loading, saving, and validating configuration.
// A missing file is not an error for LoadOrDefault and
// LoadFromWorkingDir, which fall back to New().
//
// # Configuration File Structure
//
//	{
//	  "demo": "fruits",
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "strictOwner": true
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "weave"
//	  },
//	  "export": {
//	    "bucket": "snapshots",
//	    "prefix": "demos/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
