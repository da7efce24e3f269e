// Package shaders holds the GLSL sources for the desk scene.
package shaders

// Vertex transforms object-space vertices through model/view/projection
// and passes world-space position, normal, and UV to the fragment stage.
const Vertex = `
	#version 410 core

	layout (location = 0) in vec3 aPosition;
	layout (location = 1) in vec3 aNormal;
	layout (location = 2) in vec2 aTexCoord;

	out vec3 fragmentPosition;
	out vec3 fragmentNormal;
	out vec2 fragmentTexCoord;

	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;

	void main() {
		fragmentPosition = vec3(model * vec4(aPosition, 1.0));
		fragmentNormal = mat3(transpose(inverse(model))) * aNormal;
		fragmentTexCoord = aTexCoord;

		gl_Position = projection * view * model * vec4(aPosition, 1.0);
	}
`

// Fragment shades with up to four Phong lights. Objects are either
// textured (bUseTexture) or flat-colored (objectColor), and pick up
// their reflectance from the material uniforms.
const Fragment = `
	#version 410 core

	struct Material {
		vec3 ambientColor;
		float ambientStrength;
		vec3 diffuseColor;
		vec3 specularColor;
		float shininess;
	};

	struct LightSource {
		vec3 position;
		vec3 ambientColor;
		vec3 diffuseColor;
		vec3 specularColor;
		float focalStrength;
		float specularIntensity;
	};

	#define TOTAL_LIGHTS 4

	in vec3 fragmentPosition;
	in vec3 fragmentNormal;
	in vec2 fragmentTexCoord;

	out vec4 outFragmentColor;

	uniform bool bUseTexture;
	uniform bool bUseLighting;
	uniform vec4 objectColor;
	uniform sampler2D objectTexture;
	uniform vec2 UVscale;
	uniform vec3 viewPosition;
	uniform Material material;
	uniform LightSource lightSources[TOTAL_LIGHTS];

	vec3 calcLight(LightSource light, vec3 normal, vec3 viewDir, vec3 baseColor) {
		vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

		vec3 lightDir = normalize(light.position - fragmentPosition);
		float diff = max(dot(normal, lightDir), 0.0);
		vec3 diffuse = diff * light.diffuseColor * material.diffuseColor;

		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess * light.focalStrength);
		vec3 specular = light.specularIntensity * spec * light.specularColor * material.specularColor;

		return (ambient + diffuse + specular) * baseColor;
	}

	void main() {
		vec3 baseColor;
		float alpha;
		if (bUseTexture) {
			vec4 texel = texture(objectTexture, fragmentTexCoord * UVscale);
			baseColor = texel.rgb;
			alpha = texel.a;
		} else {
			baseColor = objectColor.rgb;
			alpha = objectColor.a;
		}

		if (!bUseLighting) {
			outFragmentColor = vec4(baseColor, alpha);
			return;
		}

		vec3 normal = normalize(fragmentNormal);
		vec3 viewDir = normalize(viewPosition - fragmentPosition);

		vec3 shaded = vec3(0.0);
		for (int i = 0; i < TOTAL_LIGHTS; i++) {
			shaded += calcLight(lightSources[i], normal, viewDir, baseColor);
		}

		outFragmentColor = vec4(shaded, alpha);
	}
`
