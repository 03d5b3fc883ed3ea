package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jrpctcp/jrpctcp/client"
)

var errMissingArgs = errors.New("an address and a method are required")

// parseValue interprets a CLI param as JSON when it parses, and as a
// plain string otherwise, so both `5` and `hello` do what they look like.
func parseValue(s string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

// parseParams splits CLI params into positional args and named args.
// A "key=value" param becomes a named arg.
func parseParams(raw []string) (positional []interface{}, named map[string]interface{}) {
	for _, param := range raw {
		if i := strings.Index(param, "="); i > 0 {
			if named == nil {
				named = map[string]interface{}{}
			}
			named[param[:i]] = parseValue(param[i+1:])
			continue
		}
		positional = append(positional, parseValue(param))
	}
	return positional, named
}

func buildCall(call *client.Call, params []string) *client.Call {
	positional, named := parseParams(params)
	if len(positional) > 0 {
		call.Args(positional...)
	}
	if named != nil {
		call.NamedArgs(named)
	}
	return call
}

func runCall(options Options, addr string, method string, params []string, notify bool) error {
	if addr == "" || method == "" {
		return errMissingArgs
	}
	c := client.NewWithConfig(addr, clientConfig(options))

	if notify {
		if err := buildCall(c.Notify(method), params).Send(context.Background()); err != nil {
			return err
		}
		logger.Infof("Notification sent: %s", method)
		return nil
	}

	var result json.RawMessage
	if err := buildCall(c.Call(method), params).Invoke(context.Background(), &result); err != nil {
		return err
	}
	fmt.Println(string(result))
	return nil
}

func runBatch(options Options) error {
	addr := options.Batch.Args.Address
	if addr == "" {
		return errors.New("an address is required")
	}
	c := client.NewWithConfig(addr, clientConfig(options))
	batch := c.Batch()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		method := fields[0]
		if strings.HasPrefix(method, "-") {
			buildCall(batch.Notify(strings.TrimPrefix(method, "-")), fields[1:])
			continue
		}
		buildCall(batch.Call(method), fields[1:])
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	logger.Infof("Sending batch of %d requests", batch.Len())

	results, err := batch.Execute(context.Background())
	if err != nil {
		return err
	}
	for results.Next() {
		fmt.Println(string(results.Raw()))
	}
	return results.Err()
}
