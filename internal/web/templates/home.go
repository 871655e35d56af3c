package templates

const HomeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
</head>
<body class="bg-gray-100 p-8">
    <div class="max-w-2xl mx-auto">
        <h1 class="text-3xl font-bold mb-8">Lead Toolkit 🔎</h1>

        <div class="bg-white rounded shadow p-6 mb-6">
            <h2 class="text-xl font-semibold mb-4">Find Leads</h2>
            <form action="/check" method="GET" class="mb-4">
                <div class="flex gap-4">
                    <input type="text" name="domain" placeholder="Enter domain (e.g., apex.com)"
                        class="flex-1 p-2 border rounded">
                    <button type="submit" class="bg-blue-500 text-white px-4 py-2 rounded hover:bg-blue-600">
                        Find Leads
                    </button>
                </div>
            </form>
            <form action="/api/find-leads" method="POST" enctype="multipart/form-data">
                <div class="flex gap-4 items-center">
                    <input type="file" name="file" accept=".txt" class="flex-1 p-2 border rounded">
                    <button type="submit" class="bg-blue-500 text-white px-4 py-2 rounded hover:bg-blue-600">
                        Upload Domain List
                    </button>
                </div>
            </form>
        </div>

        <div class="bg-white rounded shadow p-6 mb-6">
            <h2 class="text-xl font-semibold mb-4">Extract Domains from CSV</h2>
            <form action="/api/extract-csv" method="POST" enctype="multipart/form-data">
                <div class="flex gap-4 items-center">
                    <input type="file" name="file" accept=".csv" class="flex-1 p-2 border rounded">
                    <button type="submit" class="bg-green-500 text-white px-4 py-2 rounded hover:bg-green-600">
                        Extract
                    </button>
                </div>
            </form>
        </div>

        <div class="bg-white rounded shadow p-6 mb-6">
            <h2 class="text-xl font-semibold mb-4">Pull Dashboard Allocations</h2>
            <form action="/api/extract-namekart" method="POST">
                <div class="flex gap-4">
                    <input type="password" name="token" placeholder="Bearer token"
                        class="flex-1 p-2 border rounded">
                    <input type="number" name="size" value="200" min="1" max="1000"
                        class="w-24 p-2 border rounded">
                    <button type="submit" class="bg-purple-500 text-white px-4 py-2 rounded hover:bg-purple-600">
                        Pull
                    </button>
                </div>
            </form>
        </div>

        <p class="text-gray-500 text-sm">
            <a href="/api/files" class="underline">stored files</a> ·
            <a href="/api/health" class="underline">health</a> ·
            <a href="/metrics" class="underline">metrics</a>
        </p>
    </div>
</body>
</html>
`
