/*
	Package client provides a JSONRPC 2.0 client that speaks over a raw
	TCP byte stream, one connection per exchange.

	A Client is bound to an address. Single calls execute as soon as they
	are invoked:

		c := client.New("localhost:8001")
		var result string
		err := c.Call("echo").Args("Testing!").Invoke(ctx, &result)

	Namespaced methods are dotted paths, built in one go or fluently:

		c.Call("tree", "echo")
		c.Call("tree").Path("echo")

	Notifications carry no correlation ID and never wait for a reply:

		err := c.Notify("echo").Args("fire and forget").Send(ctx)

	A Batch accumulates calls and notifications and sends them in a single
	round trip when executed. Results come back lazily, in the order the
	calls were issued, with notifications skipped:

		b := c.Batch()
		first := b.Call("tree", "echo").NamedArgs(map[string]interface{}{"message": "First!"})
		b.Notify("echo").Args("Skip!")
		b.Call("tree", "echo").Args("Last!")
		results, err := b.Execute(ctx)
		for results.Next() {
			var s string
			if err := results.Decode(&s); err != nil { ... }
		}
		err = results.Err()

	There is no connection reuse, no retrying, and no framing beyond the
	configured read buffer and timeout. Usage errors (reserved names, mixed
	positional and named params, an empty batch) surface before any socket
	is opened.
*/
package client
