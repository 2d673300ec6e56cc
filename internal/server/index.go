package server

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Modular Arithmetic Clock &amp; Cipher Tool</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: linear-gradient(135deg, #0f172a 0%, #1e293b 100%);
            color: white;
            min-height: 100vh;
            padding: 2rem;
        }
        .container { max-width: 1200px; margin: 0 auto; }
        h1 { text-align: center; font-weight: 300; margin-bottom: 1rem; }
        .subtitle { text-align: center; color: #94a3b8; margin-bottom: 2rem; }
        .api-docs {
            background: rgba(30, 41, 59, 0.5);
            border: 1px solid #334155;
            border-radius: 1rem;
            padding: 2rem;
        }
        .endpoint {
            margin-bottom: 2rem;
            padding: 1rem;
            background: #0f172a;
            border-radius: 0.5rem;
        }
        .method {
            display: inline-block;
            padding: 0.25rem 0.75rem;
            border-radius: 0.25rem;
            font-weight: bold;
            margin-right: 0.5rem;
        }
        .post { background: #3b82f6; }
        .get { background: #10b981; }
        code {
            background: #1e293b;
            padding: 0.25rem 0.5rem;
            border-radius: 0.25rem;
            font-size: 0.875rem;
        }
        pre {
            background: #1e293b;
            padding: 1rem;
            border-radius: 0.5rem;
            overflow-x: auto;
            margin-top: 0.5rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Modular Arithmetic Clock &amp; Cipher Tool</h1>
        <p class="subtitle">JSON API</p>

        <div class="api-docs">
            <h2>API Endpoints</h2>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/modular/operation</code>
                <p>Perform modular arithmetic operations</p>
                <pre>{"a": 7, "b": 8, "m": 12, "operation": "add"}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/cipher/caesar</code>
                <p>Caesar cipher encryption/decryption</p>
                <pre>{"text": "HELLO", "shift": 3, "decrypt": false}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/cipher/vigenere</code>
                <p>Vigen&egrave;re cipher encryption/decryption</p>
                <pre>{"text": "HELLO", "key": "KEY", "decrypt": false}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/rsa/generate</code>
                <p>Generate RSA keys from two primes</p>
                <pre>{"p": 61, "q": 53}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/rsa/generate/random</code>
                <p>Generate RSA keys from random primes of a given bit length</p>
                <pre>{"bits": 16}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/rsa/encrypt</code>
                <p>RSA encryption</p>
                <pre>{"message": 42, "e": 17, "n": 3233}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/crt/solve</code>
                <p>Solve a system of congruences</p>
                <pre>{"remainders": [2, 3, 2], "moduli": [3, 5, 7]}</pre>
            </div>

            <div class="endpoint">
                <span class="method post">POST</span>
                <code>/api/fermat/verify</code>
                <p>Verify Fermat's Little Theorem</p>
                <pre>{"a": 2, "p": 7}</pre>
            </div>

            <div class="endpoint">
                <span class="method get">GET</span>
                <code>/api/isprime/{n}</code>
                <p>Check whether n is prime</p>
            </div>
        </div>
    </div>
</body>
</html>
`
