package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrpctcp/jrpctcp/client"
	"github.com/jrpctcp/jrpctcp/jsonrpc2"
)

// runSelftest exercises the full call surface against an echo server: a
// single call, a notification, a mixed batch, a non-string payload, and a
// declared error.
func runSelftest(options Options) error {
	addr := options.Selftest.Args.Address
	if addr == "" {
		return errors.New("an address is required")
	}
	ctx := context.Background()
	c := client.NewWithConfig(addr, clientConfig(options))

	var echoed string
	if err := c.Invoke(ctx, &echoed, "echo", "Testing!"); err != nil {
		return err
	}
	if echoed != "Testing!" {
		return fmt.Errorf("echo returned %q, want %q", echoed, "Testing!")
	}
	logger.Info("Single test completed.")

	err := c.Notify("echo").
		NamedArgs(map[string]interface{}{"message": "No response!"}).
		Send(ctx)
	if err != nil {
		return err
	}
	logger.Info("Notify test completed.")

	batch := c.Batch()
	batch.Call("tree", "echo").NamedArgs(map[string]interface{}{"message": "First!"})
	batch.Notify("echo").Args("Skip!")
	batch.Call("tree", "echo").Args("Last!")
	results, err := batch.Execute(ctx)
	if err != nil {
		return err
	}
	var got []string
	for results.Next() {
		var s string
		if err := results.Decode(&s); err != nil {
			return err
		}
		got = append(got, s)
	}
	if err := results.Err(); err != nil {
		return err
	}
	if len(got) != 2 || got[0] != "First!" || got[1] != "Last!" {
		return fmt.Errorf("batch returned %q, want [First! Last!]", got)
	}
	logger.Info("Batch test completed.")

	var number int
	err = c.Call("echo").
		NamedArgs(map[string]interface{}{"message": 5}).
		Invoke(ctx, &number)
	if err != nil {
		return err
	}
	if number != 5 {
		return fmt.Errorf("echo returned %d, want 5", number)
	}
	logger.Info("Post-batch test completed.")

	err = c.Call("echo").Invoke(ctx, nil)
	if _, ok := err.(*jsonrpc2.ErrResponse); !ok {
		return fmt.Errorf("bad call returned %v, want a declared protocol error", err)
	}
	logger.Info("Bad call had necessary error.")

	logger.Info("=============================")
	logger.Info("Tests completed successfully.")
	return nil
}
